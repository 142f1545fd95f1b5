package resourceinfo

import "testing"

func TestAddMerges(t *testing.T) {
	a := FromMap(map[string]int{"V100": 2})
	b := FromMap(map[string]int{"V100": 4, "P100": 1})

	a.Add(b)

	if got := a.Get("V100"); got != 6 {
		t.Fatalf("expected 6 V100, got %d", got)
	}
	if got := a.Get("P100"); got != 1 {
		t.Fatalf("expected 1 P100, got %d", got)
	}
	if got := a.Total(); got != 7 {
		t.Fatalf("expected total 7, got %d", got)
	}
}

func TestAddNil(t *testing.T) {
	a := FromMap(map[string]int{"V100": 2})
	a.Add(nil)
	if got := a.Get("V100"); got != 2 {
		t.Fatalf("expected 2 V100, got %d", got)
	}
}

func TestNegativeCountsIgnored(t *testing.T) {
	a := FromMap(map[string]int{"V100": -3})
	if got := a.Get("V100"); got != 0 {
		t.Fatalf("expected negative count dropped, got %d", got)
	}
	a.AddCount("V100", -1)
	if got := a.Get("V100"); got != 0 {
		t.Fatalf("expected negative add ignored, got %d", got)
	}
}

func TestToMapIsACopy(t *testing.T) {
	a := FromMap(map[string]int{"V100": 2})
	m := a.ToMap()
	m["V100"] = 99
	if got := a.Get("V100"); got != 2 {
		t.Fatalf("ToMap must not alias internal state, got %d", got)
	}
}
