package classify

// Sub-category labels across all product families.
const (
	LabelCarpet         Label = "carpet"
	LabelSofa           Label = "sofa"
	LabelCarpetAndSofa  Label = "carpet_and_sofa"
	LabelPoolDeepClean  Label = "pool_deep_clean"
	LabelPoolStandard   Label = "pool_standard_clean"
	LabelGuestHouse     Label = "guest_house"
	LabelHouse          Label = "house"
	LabelApartment      Label = "apartment"
	LabelVilla          Label = "villa"
	LabelHotel          Label = "hotel"
	LabelResortHotel    Label = "resort_hotel"
	LabelIroning        Label = "ironing"
)

// Keyword groups are FR/AR/EN synonyms matched against the normalized names.
var (
	carpetKeywords = []string{"tapis", "moquette", "زربية", "سجاد", "carpet", "rug"}
	sofaKeywords   = []string{"canap", "fauteuil", "أريكة", "صالون", "أرائك", "sofa", "couch"}

	poolKeywords     = []string{"piscine", "مسبح", "pool", "swimming"}
	poolDeepKeywords = []string{"profond", "vidange", "عميق", "تفريغ", "deep"}

	guestHouseKeywords = []string{"maison d'hôte", "maison d'hote", "maison dhote", "دار الضيافة", "ضيافة", "guest house", "guesthouse"}
	resortKeywords     = []string{"resort", "منتجع"}
	villaKeywords      = []string{"villa", "فيلا"}
	apartmentKeywords  = []string{"appartement", "شقة", "apartment", "flat"}
	hotelKeywords      = []string{"hôtel", "hotel", "فندق"}
	houseKeywords      = []string{"maison", "منزل", "دار", "house"}

	ironingKeywords = []string{"repassage", "كي", "مكوى", "ironing"}

	carWashKeywords = []string{"lavage auto", "lavage de voiture", "voiture", "غسيل السيارات", "سيارة", "car wash"}
	officeKeywords  = []string{"bureau", "مكتب", "office"}
	airbnbKeywords  = []string{"airbnb"}
	shoeKeywords    = []string{"chaussure", "حذاء", "أحذية", "shoe"}
)

// CarpetSofaRules: a name mentioning both carpets and sofas is the combined
// service, never two single classifications.
var CarpetSofaRules = RuleSet{
	{Label: LabelCarpetAndSofa, All: [][]string{carpetKeywords, sofaKeywords}},
	{Label: LabelCarpet, All: [][]string{carpetKeywords}, Exclude: sofaKeywords},
	{Label: LabelSofa, All: [][]string{sofaKeywords}, Exclude: carpetKeywords},
}

var PoolRules = RuleSet{
	{Label: LabelPoolDeepClean, All: [][]string{poolKeywords, poolDeepKeywords}},
	{Label: LabelPoolStandard, All: [][]string{poolKeywords}, Exclude: poolDeepKeywords},
}

// MenageRules orders "maison d'hôte" before plain "maison"; the house rule
// also excludes guest-house markers because the Arabic guest-house name
// contains the bare house keyword "دار".
var MenageRules = RuleSet{
	{Label: LabelGuestHouse, All: [][]string{guestHouseKeywords}},
	{Label: LabelResortHotel, All: [][]string{resortKeywords}},
	{Label: LabelVilla, All: [][]string{villaKeywords}},
	{Label: LabelApartment, All: [][]string{apartmentKeywords}},
	{Label: LabelHotel, All: [][]string{hotelKeywords}, Exclude: resortKeywords},
	{Label: LabelHouse, All: [][]string{houseKeywords}, Exclude: []string{"hôte", "hote", "ضيافة", "guest", "resort", "منتجع"}},
}

var IroningRules = RuleSet{
	{Label: LabelIroning, All: [][]string{ironingKeywords}},
}

// MenageExclusions drops records that belong to the carpet, car-wash, ironing,
// office, Airbnb, pool or shoe families from the generic housekeeping listing.
var MenageExclusions = concat(
	carpetKeywords,
	carWashKeywords,
	ironingKeywords,
	officeKeywords,
	airbnbKeywords,
	poolKeywords,
	shoeKeywords,
)

// Family bundles the ordered rule set and the listing-level exclusion filter
// of one product line.
type Family struct {
	Key        string
	Rules      RuleSet
	Exclusions []string
}

var Families = map[string]Family{
	"tapis-canapes": {Key: "tapis-canapes", Rules: CarpetSofaRules},
	"piscine":       {Key: "piscine", Rules: PoolRules},
	"menage":        {Key: "menage", Rules: MenageRules, Exclusions: MenageExclusions},
	"repassage":     {Key: "repassage", Rules: IroningRules},
}

func FamilyByKey(key string) (Family, bool) {
	family, ok := Families[key]
	return family, ok
}

func concat(groups ...[]string) []string {
	var out []string
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
