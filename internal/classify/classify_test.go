package classify

import "testing"

func TestClassifyCombinedBeatsSingles(t *testing.T) {
	names := []string{"Tapis et Canapés", "تنظيف الزربية والأرائك", "Carpet and Sofa Cleaning"}
	label, ok := Classify(names, CarpetSofaRules)
	if !ok {
		t.Fatalf("expected a classification")
	}
	if label != LabelCarpetAndSofa {
		t.Fatalf("expected %q, got %q", LabelCarpetAndSofa, label)
	}
}

func TestClassifyCarpetOnly(t *testing.T) {
	label, ok := Classify([]string{"Nettoyage de Tapis", "", ""}, CarpetSofaRules)
	if !ok || label != LabelCarpet {
		t.Fatalf("expected carpet, got %q (ok=%v)", label, ok)
	}
}

func TestClassifySofaOnly(t *testing.T) {
	label, ok := Classify([]string{"", "تنظيف الأريكة", "Sofa Deep Care"}, CarpetSofaRules)
	if !ok || label != LabelSofa {
		t.Fatalf("expected sofa, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	label, ok := Classify([]string{"Jardinage", "", "Gardening"}, CarpetSofaRules)
	if ok || label != "" {
		t.Fatalf("expected no classification, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyEmptyNames(t *testing.T) {
	if _, ok := Classify([]string{"", "  ", ""}, CarpetSofaRules); ok {
		t.Fatalf("expected empty names to fail every predicate")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	names := []string{"Tapis et Canapés", "", ""}
	first, _ := Classify(names, CarpetSofaRules)
	for i := 0; i < 100; i++ {
		label, _ := Classify(names, CarpetSofaRules)
		if label != first {
			t.Fatalf("classification changed between calls: %q vs %q", first, label)
		}
	}
}

func TestClassifySingleton(t *testing.T) {
	records := [][]string{
		{"Tapis et Canapés", "", ""},
		{"Nettoyage Tapis", "", ""},
		{"Canapés", "", ""},
		{"Piscine", "", ""},
	}
	for _, names := range records {
		matched := 0
		hay := haystack(names)
		for _, rule := range CarpetSofaRules {
			if rule.matches(hay) {
				matched++
			}
		}
		if matched > 1 {
			t.Fatalf("record %v matched %d rules, want at most 1", names, matched)
		}
	}
}

func TestClassifyPoolDeep(t *testing.T) {
	label, ok := Classify([]string{"Nettoyage Profond de Piscine", "", ""}, PoolRules)
	if !ok || label != LabelPoolDeepClean {
		t.Fatalf("expected pool deep clean, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyPoolStandard(t *testing.T) {
	label, ok := Classify([]string{"Entretien Piscine", "تنظيف المسبح", ""}, PoolRules)
	if !ok || label != LabelPoolStandard {
		t.Fatalf("expected pool standard clean, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyGuestHouseBeforeHouse(t *testing.T) {
	label, ok := Classify([]string{"Ménage Maison d'hôte", "", ""}, MenageRules)
	if !ok || label != LabelGuestHouse {
		t.Fatalf("expected guest house, got %q (ok=%v)", label, ok)
	}

	label, ok = Classify([]string{"Ménage Maison", "تنظيف المنزل", ""}, MenageRules)
	if !ok || label != LabelHouse {
		t.Fatalf("expected house, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyArabicGuestHouseNotHouse(t *testing.T) {
	// The Arabic guest-house name contains the bare house keyword "دار".
	label, ok := Classify([]string{"", "دار الضيافة", ""}, MenageRules)
	if !ok || label != LabelGuestHouse {
		t.Fatalf("expected guest house, got %q (ok=%v)", label, ok)
	}
}

func TestClassifyResortHotel(t *testing.T) {
	label, ok := Classify([]string{"Hôtel Resort", "", ""}, MenageRules)
	if !ok || label != LabelResortHotel {
		t.Fatalf("expected resort hotel, got %q (ok=%v)", label, ok)
	}

	label, ok = Classify([]string{"Hôtel", "فندق", "Hotel"}, MenageRules)
	if !ok || label != LabelHotel {
		t.Fatalf("expected hotel, got %q (ok=%v)", label, ok)
	}
}

func TestExcludedFromFamily(t *testing.T) {
	if !ExcludedFromFamily([]string{"Nettoyage Tapis", "", ""}, MenageExclusions) {
		t.Fatalf("carpet record should be dropped from the menage listing")
	}
	if !ExcludedFromFamily([]string{"Lavage de Voiture", "", ""}, MenageExclusions) {
		t.Fatalf("car wash record should be dropped from the menage listing")
	}
	if ExcludedFromFamily([]string{"Ménage Complet Villa", "", ""}, MenageExclusions) {
		t.Fatalf("villa housekeeping record should stay in the menage listing")
	}
}

func TestExcludedFromFamilyCrossLanguage(t *testing.T) {
	// A record mentioning two families in different language fields is dropped
	// silently from every listing.
	names := []string{"Piscine", "", "Carpet Refresh"}
	if !ExcludedFromFamily(names, MenageExclusions) {
		t.Fatalf("cross-family record should be dropped")
	}
}
