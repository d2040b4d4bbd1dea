// Package category holds the static spending/income catalog: labels,
// display labels, colors, group membership and icon names. The catalog
// never changes at runtime.
package category

// Entry describes one selectable category.
type Entry struct {
	Label        string `json:"label"` // stable key
	DisplayLabel string `json:"displayLabel"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
}

// Group is a named, ordered set of categories.
type Group struct {
	Name  string  `json:"name"`
	Items []Entry `json:"items"`
}

// DefaultColor is used when a transaction references a label that is not
// in the catalog; the raw label is shown as-is.
const DefaultColor = "#94a3b8"

// IncomeGroupName doubles as the derived group for income transactions.
const IncomeGroupName = "收入"

const fallbackGroupName = "其他大类"

// Groups lists the expense catalog in display order. Order matters:
// lookups and chart legends iterate it as declared.
var Groups = []Group{
	{
		Name: "购物大类",
		Items: []Entry{
			{Label: "菜篮子", DisplayLabel: "菜篮子", Color: "#7FB3D5", Icon: "shopping-basket"},
			{Label: "干货调料", DisplayLabel: "干货调料", Color: "#A9DFBF", Icon: "soup"},
			{Label: "日用五金", DisplayLabel: "日用五金", Color: "#F7DC6F", Icon: "wrench"},
			{Label: "服饰", DisplayLabel: "服饰", Color: "#E59866", Icon: "shirt"},
			{Label: "购物其他", DisplayLabel: "其他", Color: "#D2B4DE", Icon: "package"},
		},
	},
	{
		Name: "娱乐大类",
		Items: []Entry{
			{Label: "餐饮", DisplayLabel: "餐饮", Color: "#EC7063", Icon: "coffee"},
			{Label: "交通", DisplayLabel: "交通", Color: "#5DADE2", Icon: "train-front"},
			{Label: "住宿", DisplayLabel: "住宿", Color: "#58D68D", Icon: "hotel"},
			{Label: "票务", DisplayLabel: "票务", Color: "#F4D03F", Icon: "ticket"},
			{Label: "娱乐其他", DisplayLabel: "其他", Color: "#AF7AC5", Icon: "sparkles"},
		},
	},
	{
		Name: "服务大类",
		Items: []Entry{
			{Label: "水", DisplayLabel: "水", Color: "#48C9B0", Icon: "droplets"},
			{Label: "电", DisplayLabel: "电", Color: "#F5B041", Icon: "zap"},
			{Label: "燃", DisplayLabel: "燃", Color: "#EB984E", Icon: "flame"},
			{Label: "话", DisplayLabel: "话", Color: "#52BE80", Icon: "phone"},
			{Label: "服务其他", DisplayLabel: "其他", Color: "#AAB7B8", Icon: "help-circle"},
		},
	},
	{
		Name: "其他大类",
		Items: []Entry{
			{Label: "其他", DisplayLabel: "其他", Color: "#85929E", Icon: "more-horizontal"},
		},
	},
}

// IncomeCategory is the single category used by income transactions.
var IncomeCategory = Entry{
	Label:        "收入",
	DisplayLabel: "收入",
	Color:        "#2ECC71",
	Icon:         "dollar-sign",
}

// ChartColors is the palette cycled through by breakdown charts.
var ChartColors = []string{
	"#7FB3D5", "#EC7063", "#48C9B0", "#85929E", "#E59866",
	"#5DADE2", "#F4D03F", "#A9DFBF", "#AF7AC5", "#58D68D",
}

// Lookup returns the catalog entry for a label. Income and every expense
// group are searched in declaration order.
func Lookup(label string) (Entry, bool) {
	if label == IncomeCategory.Label {
		return IncomeCategory, true
	}
	for _, g := range Groups {
		for _, e := range g.Items {
			if e.Label == label {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Display resolves a label for rendering: catalog entries use their
// display label and color, unknown labels fall back to the raw label and
// the default color.
func Display(label string) Entry {
	if e, ok := Lookup(label); ok {
		return e
	}
	return Entry{Label: label, DisplayLabel: label, Color: DefaultColor}
}

// GroupOf derives a transaction's group from its category label. Income
// maps to the income group; unknown labels fall back to the catch-all
// group.
func GroupOf(label string) string {
	if label == IncomeCategory.Label {
		return IncomeGroupName
	}
	for _, g := range Groups {
		for _, e := range g.Items {
			if e.Label == label {
				return g.Name
			}
		}
	}
	return fallbackGroupName
}

// Expenses flattens all expense groups into one declaration-ordered
// slice.
func Expenses() []Entry {
	var out []Entry
	for _, g := range Groups {
		out = append(out, g.Items...)
	}
	return out
}
