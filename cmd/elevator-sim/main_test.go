package main

import "testing"

func TestParseInput(t *testing.T) {
	start, floors, err := parseInput("start=12 floor=2,9,1,32")
	if err != nil {
		t.Fatalf("Failed to parse valid input: %v", err)
	}
	if start != 12 {
		t.Errorf("Expected start floor 12, got %d", start)
	}
	expected := []int{2, 9, 1, 32}
	if len(floors) != len(expected) {
		t.Fatalf("Expected floors %v, got %v", expected, floors)
	}
	for i, floor := range expected {
		if floors[i] != floor {
			t.Errorf("Expected floors %v, got %v", expected, floors)
			break
		}
	}
}

func TestParseInput_SkipsEmptyEntries(t *testing.T) {
	_, floors, err := parseInput("start=1 floor=2,,3,")
	if err != nil {
		t.Fatalf("Failed to parse input with empty entries: %v", err)
	}
	if len(floors) != 2 || floors[0] != 2 || floors[1] != 3 {
		t.Errorf("Expected floors [2 3], got %v", floors)
	}
}

func TestParseInput_Errors(t *testing.T) {
	cases := []string{
		"",
		"start=12",
		"floor=1,2",
		"start=abc floor=1",
		"start=1 floor=a,b",
		"start=1 floor=,",
	}
	for _, input := range cases {
		if _, _, err := parseInput(input); err == nil {
			t.Errorf("Expected error for input %q, got nil", input)
		}
	}
}
