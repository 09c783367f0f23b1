package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trenner1/bottle-app/internal/core/domain"
	"github.com/trenner1/bottle-app/internal/core/service"
)

const timeLayout = "2006-01-02 15:04:05"

const menu = `1) Add beer
2) Remove beer by ID
3) Remove bottles by amount
4) Edit beer
5) List beers
6) List flagged beers
7) Show totals
8) Show total bottle count
9) Flag breakage
0) Quit
`

// Console is the interactive front end. It owns raw-input parsing, the
// retry loops, and all rendering; every argument it builds is handed to the
// ledger already typed, and the ledger's outcome decides what gets printed.
type Console struct {
	ledger *service.Ledger
	in     *bufio.Scanner
	out    io.Writer

	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
	noteStyle  lipgloss.Style
}

// NewConsole wires a console over the given streams. With color disabled
// every style renders as plain text, which also keeps scripted sessions
// byte-stable.
func NewConsole(ledger *service.Ledger, in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	if color {
		c.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		c.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		c.noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	}
	return c
}

// Run drives the menu until the user quits or input ends.
func (c *Console) Run() {
	fmt.Fprintln(c.out, c.titleStyle.Render("Bottle App"))
	for {
		fmt.Fprint(c.out, menu)
		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.addBeer()
		case "2":
			c.removeByID()
		case "3":
			c.removeAmount()
		case "4":
			c.editBeer()
		case "5":
			c.listBeers()
		case "6":
			c.listFlagged()
		case "7":
			c.showTotals()
		case "8":
			c.showTotalCount()
		case "9":
			c.ledger.FlagBreakage()
			fmt.Fprintln(c.out, c.noteStyle.Render("Breakage flagged. Every later addition is counted as broken."))
		case "0", "q", "quit":
			return
		default:
			fmt.Fprintln(c.out, c.errorStyle.Render("Unknown option."))
		}
	}
}

func (c *Console) addBeer() {
	name, ok := c.prompt("Name: ")
	if !ok {
		return
	}
	style, ok := c.prompt("Style: ")
	if !ok {
		return
	}
	abv, ok := c.promptFloat("Alcohol content (%): ")
	if !ok {
		return
	}
	metric, ok := c.promptBool("Metric container size? (y/n): ")
	if !ok {
		return
	}
	unit := "fl oz"
	if metric {
		unit = "ml"
	}
	size, ok := c.promptInt(fmt.Sprintf("Container size (%s): ", unit))
	if !ok {
		return
	}
	quantity, ok := c.promptInt("Quantity: ")
	if !ok {
		return
	}
	code, ok := c.promptBarcode(fmt.Sprintf("Barcode (%d digits): ", domain.BarcodeDigits))
	if !ok {
		return
	}

	id, err := c.ledger.Add(domain.Beer{
		Name:           name,
		Style:          style,
		AlcoholContent: abv,
		Size:           domain.NewContainerSize(metric, size),
		Quantity:       quantity,
		Barcode:        code,
	})
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		fmt.Fprintln(c.out, c.errorStyle.Render("Invalid quantity. Enter a positive value."))
	case errors.Is(err, service.ErrDuplicateName):
		fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("%s is already in stock. Edit it instead.", name)))
	case err != nil:
		fmt.Fprintln(c.out, c.errorStyle.Render(err.Error()))
	default:
		fmt.Fprintf(c.out, "%d bottles of %s added to stock (ID %d).\n", quantity, name, id)
		if c.ledger.Flagged() {
			fmt.Fprintln(c.out, c.noteStyle.Render("Breakage has been flagged while adding beer."))
		}
	}
}

func (c *Console) removeByID() {
	id, ok := c.promptInt("ID of the beer to remove: ")
	if !ok {
		return
	}
	if err := c.ledger.Remove(id); errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("No beer with ID %d.", id)))
		return
	}
	fmt.Fprintf(c.out, "Beer with ID %d removed from stock.\n", id)
}

func (c *Console) removeAmount() {
	amount, ok := c.promptInt("Amount of bottles to remove: ")
	if !ok {
		return
	}
	err := c.ledger.RemoveAmount(amount)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		fmt.Fprintln(c.out, c.errorStyle.Render("Invalid amount. Enter a positive value."))
	case errors.Is(err, service.ErrInsufficientStock):
		fmt.Fprintf(c.out, "%s\n", c.errorStyle.Render(fmt.Sprintf("Not enough stock to remove %d bottles.", amount)))
	default:
		fmt.Fprintf(c.out, "%d bottles removed from stock.\n", amount)
	}
}

func (c *Console) editBeer() {
	name, ok := c.prompt("Name of the beer to edit: ")
	if !ok {
		return
	}

	found := false
	for _, beer := range c.ledger.List() {
		if beer.Name == name {
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("Beer %q not found.", name)))
		return
	}

	var update domain.BeerUpdate

	newName, ok := c.prompt("New name (blank keeps current): ")
	if !ok {
		return
	}
	if newName != "" {
		update.Name = &newName
	}

	newStyle, ok := c.prompt("New style (blank keeps current): ")
	if !ok {
		return
	}
	if newStyle != "" {
		update.Style = &newStyle
	}

	abvText, ok := c.prompt("New alcohol content % (blank keeps current): ")
	if !ok {
		return
	}
	if abvText != "" {
		if v, err := strconv.ParseFloat(abvText, 64); err != nil {
			fmt.Fprintln(c.out, c.errorStyle.Render("Not a number; keeping current alcohol content."))
		} else {
			update.AlcoholContent = &v
		}
	}

	sizeText, ok := c.prompt("New container size (blank keeps current): ")
	if !ok {
		return
	}
	if sizeText != "" {
		if v, err := strconv.Atoi(sizeText); err != nil {
			fmt.Fprintln(c.out, c.errorStyle.Render("Not a whole number; keeping current size."))
		} else {
			update.Size = &v
		}
	}

	metricText, ok := c.prompt("Metric size? (y/n, blank keeps current): ")
	if !ok {
		return
	}
	if metricText != "" {
		v := isYes(metricText)
		update.Metric = &v
	}

	quantityText, ok := c.prompt("New quantity (blank keeps current): ")
	if !ok {
		return
	}
	if quantityText != "" {
		if v, err := strconv.Atoi(quantityText); err != nil {
			fmt.Fprintln(c.out, c.errorStyle.Render("Not a whole number; keeping current quantity."))
		} else {
			update.Quantity = &v
		}
	}

	barcodeText, ok := c.prompt(fmt.Sprintf("New barcode (%d digits, blank keeps current): ", domain.BarcodeDigits))
	if !ok {
		return
	}
	if barcodeText != "" {
		v, err := strconv.Atoi(barcodeText)
		code := domain.Barcode(v)
		if err != nil || !code.Valid() {
			fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("A barcode has exactly %d digits; keeping current barcode.", domain.BarcodeDigits)))
		} else {
			update.Barcode = &code
		}
	}

	if err := c.ledger.Edit(name, update); errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("Beer %q not found.", name)))
		return
	}
	fmt.Fprintln(c.out, "Beer details updated.")
}

func (c *Console) listBeers() {
	beers := c.ledger.List()
	if len(beers) == 0 {
		fmt.Fprintln(c.out, "No beers in stock.")
		return
	}
	fmt.Fprintln(c.out, c.titleStyle.Render("List of added beers:"))
	for _, beer := range beers {
		fmt.Fprintf(c.out, "ID: %d\n", beer.ID)
		fmt.Fprintf(c.out, "Name: %s\n", beer.Name)
		fmt.Fprintf(c.out, "Style: %s\n", beer.Style)
		fmt.Fprintf(c.out, "Alcohol Content: %g%%\n", beer.AlcoholContent)
		fmt.Fprintf(c.out, "Container Size: %s\n", beer.Size)
		fmt.Fprintf(c.out, "Quantity: %d bottles\n", beer.Quantity)
		fmt.Fprintf(c.out, "Barcode: %d\n", beer.Barcode)
		fmt.Fprintf(c.out, "Updated: %s\n", beer.UpdatedAt.Format(timeLayout))
		fmt.Fprintln(c.out, "-----------------------")
	}
}

func (c *Console) listFlagged() {
	events := c.ledger.FlaggedEvents()
	if len(events) == 0 {
		fmt.Fprintln(c.out, "No beers flagged for breakage.")
		return
	}
	fmt.Fprintln(c.out, c.titleStyle.Render("List of flagged beers:"))
	for _, event := range events {
		fmt.Fprintf(c.out, "Name: %s\n", event.Name)
		fmt.Fprintf(c.out, "Quantity: %d bottles\n", event.Quantity)
		fmt.Fprintf(c.out, "At: %s\n", event.At.Format(timeLayout))
		fmt.Fprintln(c.out, "-----------------------")
	}
	fmt.Fprintf(c.out, "Total breakage: %d bottles\n", c.ledger.TotalBroken())
}

func (c *Console) showTotals() {
	totals := c.ledger.Totals()
	if len(totals) == 0 {
		fmt.Fprintln(c.out, "No stock has been added yet.")
		return
	}
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(c.out, c.titleStyle.Render("Total counts of each beer type:"))
	for _, name := range names {
		fmt.Fprintf(c.out, "%s: %d bottles\n", name, totals[name])
	}
}

func (c *Console) showTotalCount() {
	total, err := c.ledger.TotalCount()
	if err != nil {
		fmt.Fprintln(c.out, c.errorStyle.Render("No stock has been added yet."))
		return
	}
	fmt.Fprintf(c.out, "Total beer count in stock: %d bottles.\n", total)
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptInt(label string) (int, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, c.errorStyle.Render("Enter a whole number."))
			continue
		}
		return v, true
	}
}

func (c *Console) promptFloat(label string) (float64, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(c.out, c.errorStyle.Render("Enter a number."))
			continue
		}
		return v, true
	}
}

func (c *Console) promptBool(label string) (bool, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return false, false
		}
		switch strings.ToLower(text) {
		case "y", "yes", "1":
			return true, true
		case "n", "no", "0":
			return false, true
		}
		fmt.Fprintln(c.out, c.errorStyle.Render("Answer y or n."))
	}
}

// promptBarcode retries until the entered code has the required digit count.
func (c *Console) promptBarcode(label string) (domain.Barcode, bool) {
	for {
		v, ok := c.promptInt(label)
		if !ok {
			return 0, false
		}
		code := domain.Barcode(v)
		if !code.Valid() {
			fmt.Fprintln(c.out, c.errorStyle.Render(fmt.Sprintf("A barcode has exactly %d digits.", domain.BarcodeDigits)))
			continue
		}
		return code, true
	}
}

func isYes(text string) bool {
	switch strings.ToLower(text) {
	case "y", "yes", "1":
		return true
	}
	return false
}
