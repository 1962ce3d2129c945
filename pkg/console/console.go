package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPanel exibe um conteúdo dentro de um box com título.
func (c *Console) DisplayPanel(title string, content string) {
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(content)
	fmt.Println("\n" + panel)
}

// DisplayBars exibe uma série como barras horizontais com a participação de cada item.
func (c *Console) DisplayBars(title string, bars []types.BarValue) {
	maxValue := 0.0
	total := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		total += b.Value
	}

	if maxValue == 0 {
		pterm.Warning.Printfln("%s: no data to chart", title)
		return
	}

	tableData := pterm.TableData{
		{"Label", "Value", "", "Share"},
	}

	for i, b := range bars {
		barLength := int(math.Round((b.Value / maxValue) * 40))
		bar := strings.Repeat("█", barLength)
		share := (b.Value / total) * 100.0

		tableData = append(tableData, []string{
			b.Label,
			b.Formatted,
			barColors[i%len(barColors)].Sprint(bar),
			fmt.Sprintf("%.1f%%", share),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// Mesma ordem de cores dos gráficos PNG.
var barColors = []pterm.Color{pterm.FgBlue, pterm.FgGreen, pterm.FgYellow, pterm.FgRed, pterm.FgMagenta}

// Select exibe um seletor interativo e devolve a opção escolhida.
func (c *Console) Select(prompt string, options []string, defaultOption string) (string, error) {
	printer := pterm.DefaultInteractiveSelect.WithOptions(options).WithMaxHeight(15)
	if defaultOption != "" {
		printer = printer.WithDefaultOption(defaultOption)
	}
	return printer.Show(prompt)
}

// TextInput lê uma linha de texto do usuário.
func (c *Console) TextInput(prompt string, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(defaultValue).Show(prompt)
}
