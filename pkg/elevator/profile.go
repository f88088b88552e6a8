// Package elevator implements a single-car elevator timing simulation with an
// interruptible real-time engine.
// 이 패키지는 인터럽트 가능한 실시간 엔진을 갖춘 단일 엘리베이터 타이밍 시뮬레이터를 구현합니다.
package elevator

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Building floor range.
// 건물의 층 범위입니다.
const (
	MinFloor = 1  // bottom floor (ground floor, no basement)
	MaxFloor = 35 // top floor
)

// Profile holds immutable timing parameters for one elevator variant.
// Created once at simulation start; never mutated.
// Profile은 엘리베이터 한 종류의 불변 타이밍 설정을 저장합니다.
type Profile struct {
	Label                 string        // optional announcement label ("express")
	FloorTravelTime       time.Duration // 한 층 이동 시간
	DoorOpenTime          time.Duration // 문 열림 시간
	DoorCloseTime         time.Duration // 문 닫힘 시간
	PassengerTransferTime time.Duration // 승객 승하차 시간
}

// StandardProfile returns the standard elevator timing.
// StandardProfile은 표준 엘리베이터의 타이밍을 반환합니다.
func StandardProfile() Profile {
	return Profile{
		FloorTravelTime:       10 * time.Second,
		DoorOpenTime:          2 * time.Second,
		DoorCloseTime:         2 * time.Second,
		PassengerTransferTime: 4 * time.Second,
	}
}

// FastProfile returns the express elevator timing. It differs from the
// standard profile only in travel speed and its announcement label.
// FastProfile은 고속 엘리베이터의 타이밍을 반환합니다.
func FastProfile() Profile {
	return Profile{
		Label:                 "express",
		FloorTravelTime:       5 * time.Second,
		DoorOpenTime:          2 * time.Second,
		DoorCloseTime:         2 * time.Second,
		PassengerTransferTime: 4 * time.Second,
	}
}

// Validate rejects profiles with negative durations (Fail Fast).
func (p Profile) Validate() error {
	for _, d := range []time.Duration{
		p.FloorTravelTime, p.DoorOpenTime, p.DoorCloseTime, p.PassengerTransferTime,
	} {
		if d < 0 {
			return fmt.Errorf("invalid profile: negative duration %v", d)
		}
	}
	return nil
}

// profileFile mirrors the on-disk YAML profile. Times are in seconds, same
// convention as the web client config.
type profileFile struct {
	Label                 string  `yaml:"label"`
	FloorTravelTime       float64 `yaml:"floorTravelTime"`
	DoorOpenTime          float64 `yaml:"doorOpenTime"`
	DoorCloseTime         float64 `yaml:"doorCloseTime"`
	PassengerTransferTime float64 `yaml:"passengerTransferTime"`
}

// LoadProfile reads a timing profile from a YAML file.
// LoadProfile은 YAML 파일에서 타이밍 프로필을 읽어들입니다.
func LoadProfile(path string) (Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer file.Close()

	var pf profileFile
	if err := yaml.NewDecoder(file).Decode(&pf); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}

	p := Profile{
		Label:                 pf.Label,
		FloorTravelTime:       secondsToDuration(pf.FloorTravelTime),
		DoorOpenTime:          secondsToDuration(pf.DoorOpenTime),
		DoorCloseTime:         secondsToDuration(pf.DoorCloseTime),
		PassengerTransferTime: secondsToDuration(pf.PassengerTransferTime),
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ValidateFloor checks that a floor lies within the building range. It is a
// pure function called at every floor mutation site, not an encapsulated
// setter.
// ValidateFloor는 층이 건물 범위 내에 있는지 확인합니다.
func ValidateFloor(floor int) error {
	if floor < MinFloor || floor > MaxFloor {
		return fmt.Errorf("floor %d is out of range, valid floors are %d to %d", floor, MinFloor, MaxFloor)
	}
	return nil
}
