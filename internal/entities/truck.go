package entities

import (
	"time"
)

type Truck struct {
	ID            int64
	OperatorID    int64
	ModelCode     string
	VIN           string
	Manufacturer  string
	ModelYear     int
	PrimaryType   TruckPrimaryType
	MaxWeightTons float64
	MaxVolumeM3   float64
	Status        TruckStatusType
	Routes        []ServiceRoute
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TruckStatusType string

const (
	TruckActive      TruckStatusType = "ACTIVE"
	TruckMaintenance TruckStatusType = "MAINTENANCE"
	TruckRetired     TruckStatusType = "RETIRED"
)

const DefaultTruckStatus = TruckActive

func (t TruckStatusType) String() string {
	return string(t)
}

type TruckPrimaryType string

const (
	TruckGeneralOpen   TruckPrimaryType = "GENERAL_OPEN"
	TruckGeneralClosed TruckPrimaryType = "GENERAL_CLOSED"
	TruckRefrigerated  TruckPrimaryType = "REFRIGERATED"
	TruckTanker        TruckPrimaryType = "TANKER"
	TruckBulk          TruckPrimaryType = "BULK"
	TruckCarCarrier    TruckPrimaryType = "CAR_CARRIER"
	TruckLivestock     TruckPrimaryType = "LIVESTOCK"
	TruckLowBed        TruckPrimaryType = "LOW_BED"
	TruckCombination   TruckPrimaryType = "COMBINATION"
)

func (t TruckPrimaryType) String() string {
	return string(t)
}

// ServiceRoute is a directed origin->destination lane a truck is registered to travel.
type ServiceRoute struct {
	ID            int64
	Name          string
	StartLocation string
	EndLocation   string
	DistanceKm    *float64
	SequenceOrder int
}

// TruckDraft carries the fields for registering a truck with its routes.
type TruckDraft struct {
	ModelCode     string
	VIN           string
	Manufacturer  string
	ModelYear     int
	PrimaryType   TruckPrimaryType
	MaxWeightTons float64
	MaxVolumeM3   float64
	Status        *TruckStatusType
	Routes        []ServiceRoute
}

type TruckModify struct {
	ID            *int64
	ModelCode     *string
	VIN           *string
	Manufacturer  *string
	ModelYear     *int
	PrimaryType   *TruckPrimaryType
	MaxWeightTons *float64
	MaxVolumeM3   *float64
	Status        *TruckStatusType
	Routes        *[]ServiceRoute
}

// TruckCandidate is a matcher result row. UtilizationScore is the larger of the
// weight and volume fill ratios; closer to 1.0 means a tighter fit.
type TruckCandidate struct {
	Truck             Truck
	Route             ServiceRoute
	UtilizationWeight float64
	UtilizationVolume float64
	UtilizationScore  float64
}

// MatchQuery describes the payload and lane a candidate truck must carry.
type MatchQuery struct {
	Origin      string
	Destination string
	WeightTons  float64
	VolumeM3    float64
}
