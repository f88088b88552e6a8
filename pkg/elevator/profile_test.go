package elevator

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidateFloor(t *testing.T) {
	if err := ValidateFloor(MinFloor); err != nil {
		t.Errorf("Expected floor %d to be valid: %v", MinFloor, err)
	}
	if err := ValidateFloor(MaxFloor); err != nil {
		t.Errorf("Expected floor %d to be valid: %v", MaxFloor, err)
	}
	if err := ValidateFloor(MinFloor - 1); err == nil {
		t.Error("Expected error for floor below range, got nil")
	}
	if err := ValidateFloor(MaxFloor + 1); err == nil {
		t.Error("Expected error for floor above range, got nil")
	}
}

func TestFastProfile(t *testing.T) {
	fast := FastProfile()
	standard := StandardProfile()

	if fast.FloorTravelTime != standard.FloorTravelTime/2 {
		t.Errorf("Expected fast travel to be half of standard, got %v", fast.FloorTravelTime)
	}
	if fast.Label == "" {
		t.Error("Expected fast profile to carry an announcement label")
	}
	// The two canonical profiles differ only in travel speed and label.
	if fast.DoorOpenTime != standard.DoorOpenTime ||
		fast.DoorCloseTime != standard.DoorCloseTime ||
		fast.PassengerTransferTime != standard.PassengerTransferTime {
		t.Error("Expected fast profile to share door and transfer timing with standard")
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `label: freight
floorTravelTime: 12.5
doorOpenTime: 3
doorCloseTime: 3
passengerTransferTime: 6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write profile file: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}

	if profile.Label != "freight" {
		t.Errorf("Expected label freight, got %q", profile.Label)
	}
	if profile.FloorTravelTime != 12500*time.Millisecond {
		t.Errorf("Expected travel time 12.5s, got %v", profile.FloorTravelTime)
	}
	if profile.DoorOpenTime != 3*time.Second {
		t.Errorf("Expected door open time 3s, got %v", profile.DoorOpenTime)
	}
	if profile.PassengerTransferTime != 6*time.Second {
		t.Errorf("Expected transfer time 6s, got %v", profile.PassengerTransferTime)
	}
}

func TestLoadProfile_Errors(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("floorTravelTime: -1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write profile file: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("Expected error for negative duration, got nil")
	}
}
