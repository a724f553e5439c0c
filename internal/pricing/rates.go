package pricing

// Rate tables per bookable sub-category, in MAD. Dimensions are entered in
// centimeters; area rates are per square meter.

const Currency = "MAD"

const (
	CarpetRatePerM2 = 35.0

	SofaRatePerM2    = 100.0
	SofaThresholdM2  = 8.0
	SofaMinimumPrice = 800.0

	PoolDeepRatePerM2     = 25.0
	PoolStandardRatePerM2 = 15.0

	RoomRatePerM2   = 20.0
	SuiteRatePerM2  = 30.0
	GardenRatePerM2 = 10.0

	BreakfastPrice      = 150.0
	BedsheetChangePrice = 100.0

	IroningShirtPrice    = 10.0
	IroningPantsPrice    = 12.0
	IroningDressPrice    = 20.0
	IroningJacketPrice   = 25.0
	IroningBedsheetPrice = 15.0
)

var carpetTable = RateTable{
	"carpet": {Mode: ModePerArea, Unit: CarpetRatePerM2},
}

var sofaTable = RateTable{
	"sofa": {Mode: ModeTieredArea, Unit: SofaRatePerM2, ThresholdM2: SofaThresholdM2, Minimum: SofaMinimumPrice},
}

var carpetAndSofaTable = RateTable{
	"carpet": {Mode: ModePerArea, Unit: CarpetRatePerM2},
	"sofa":   {Mode: ModeTieredArea, Unit: SofaRatePerM2, ThresholdM2: SofaThresholdM2, Minimum: SofaMinimumPrice},
}

var poolDeepTable = RateTable{
	"pool": {Mode: ModePerArea, Unit: PoolDeepRatePerM2},
}

var poolStandardTable = RateTable{
	"pool": {Mode: ModePerArea, Unit: PoolStandardRatePerM2},
}

var lodgingTable = RateTable{
	"rooms":  {Mode: ModePerArea, Unit: RoomRatePerM2},
	"suites": {Mode: ModePerArea, Unit: SuiteRatePerM2},
	"pool":   {Mode: ModePerArea, Unit: PoolStandardRatePerM2},
	"garden": {Mode: ModePerArea, Unit: GardenRatePerM2},
}

// Guest houses additionally book fixed-price hospitality add-ons.
var guestHouseTable = RateTable{
	"rooms":           {Mode: ModePerArea, Unit: RoomRatePerM2},
	"suites":          {Mode: ModePerArea, Unit: SuiteRatePerM2},
	"pool":            {Mode: ModePerArea, Unit: PoolStandardRatePerM2},
	"garden":          {Mode: ModePerArea, Unit: GardenRatePerM2},
	"breakfast":       {Mode: ModeFlat, Flat: BreakfastPrice},
	"bedsheet_change": {Mode: ModeFlat, Flat: BedsheetChangePrice},
}

var ironingTable = RateTable{
	"shirt":    {Mode: ModePerPiece, Unit: IroningShirtPrice},
	"pants":    {Mode: ModePerPiece, Unit: IroningPantsPrice},
	"dress":    {Mode: ModePerPiece, Unit: IroningDressPrice},
	"jacket":   {Mode: ModePerPiece, Unit: IroningJacketPrice},
	"bedsheet": {Mode: ModePerPiece, Unit: IroningBedsheetPrice},
}

var tablesByLabel = map[string]RateTable{
	"carpet":              carpetTable,
	"sofa":                sofaTable,
	"carpet_and_sofa":     carpetAndSofaTable,
	"pool_deep_clean":     poolDeepTable,
	"pool_standard_clean": poolStandardTable,
	"guest_house":         guestHouseTable,
	"house":               lodgingTable,
	"apartment":           lodgingTable,
	"villa":               lodgingTable,
	"hotel":               lodgingTable,
	"resort_hotel":        lodgingTable,
	"ironing":             ironingTable,
}

// TableForLabel resolves the rate table of a classified sub-category.
func TableForLabel(label string) (RateTable, bool) {
	table, ok := tablesByLabel[label]
	return table, ok
}
