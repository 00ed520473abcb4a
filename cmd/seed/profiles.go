package main

// demandProfile shapes the synthetic demand generator per category.
// Seasonality (weekend dips/spikes, recency drift) lives here in the
// generator only; the forecasting algorithms themselves do not model it.
type demandProfile struct {
	baseDemand    float64
	variance      float64
	weekendFactor float64
}

var demandProfiles = map[string]demandProfile{
	"Electronics":     {baseDemand: 3, variance: 2, weekendFactor: 1.5},
	"Office Supplies": {baseDemand: 5, variance: 3, weekendFactor: 0.3},
	"Packaging":       {baseDemand: 8, variance: 4, weekendFactor: 0.5},
	"Tools":           {baseDemand: 2, variance: 1, weekendFactor: 0.8},
	"Safety":          {baseDemand: 2, variance: 1, weekendFactor: 0.2},
}

var defaultProfile = demandProfile{baseDemand: 3, variance: 2, weekendFactor: 0.5}

var demoCategories = []struct {
	name  string
	color string
}{
	{"Electronics", "#3b82f6"},
	{"Office Supplies", "#10b981"},
	{"Packaging", "#f59e0b"},
	{"Tools", "#8b5cf6"},
	{"Safety", "#ef4444"},
}

var demoProducts = []struct {
	sku      string
	name     string
	category string
	quantity int
	minStock int
	maxStock int
}{
	{"ELEC-0001", "Wireless Barcode Scanner", "Electronics", 120, 20, 500},
	{"ELEC-0002", "Label Printer", "Electronics", 45, 10, 200},
	{"ELEC-0003", "Handheld Terminal", "Electronics", 60, 15, 250},
	{"OFFC-0001", "Thermal Label Roll", "Office Supplies", 800, 100, 2000},
	{"OFFC-0002", "Shipping Marker Pack", "Office Supplies", 350, 50, 1000},
	{"PACK-0001", "Cardboard Box Medium", "Packaging", 1500, 200, 5000},
	{"PACK-0002", "Bubble Wrap Roll", "Packaging", 400, 80, 1200},
	{"PACK-0003", "Pallet Stretch Film", "Packaging", 250, 40, 800},
	{"TOOL-0001", "Box Cutter", "Tools", 90, 15, 300},
	{"TOOL-0002", "Tape Dispenser", "Tools", 75, 10, 250},
	{"SAFE-0001", "High-Vis Vest", "Safety", 110, 20, 400},
	{"SAFE-0002", "Work Gloves Pair", "Safety", 200, 30, 600},
}
