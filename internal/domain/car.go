package domain

type EngineType string

const (
	EnginePetrol   EngineType = "Petrol"
	EngineDiesel   EngineType = "Diesel"
	EngineElectric EngineType = "Electric"
	EngineHybrid   EngineType = "Hybrid"
)

type CarColor string

const (
	ColorRed   CarColor = "Red"
	ColorBlue  CarColor = "Blue"
	ColorWhite CarColor = "White"
	ColorBlack CarColor = "Black"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

const (
	// MaxCarsPerOwner caps the number of listings a single showroom may hold.
	MaxCarsPerOwner = 5
	// MaxCarImages caps the images attached to one listing.
	MaxCarImages = 4
	// MinSeats and MaxSeats bound the seating capacity of a listing.
	MinSeats = 2
	MaxSeats = 6
)

type Car struct {
	ID              int32        `json:"id"`
	OwnerID         int32        `json:"ownerId"`
	ModelName       string       `json:"modelName"`
	EngineType      EngineType   `json:"engineType"`
	Price           int64        `json:"price"`
	Color           CarColor     `json:"color"`
	SeatingCapacity int32        `json:"seatingCapacity"`
	Mileage         int32        `json:"mileage"`
	Transmission    Transmission `json:"transmissionType"`
	Images          []string     `json:"carImages"`
	Description     string       `json:"description"`
	EMIPerMonth     *int64       `json:"emiPerMonth,omitempty"`
	CarsCount       int32        `json:"carsCount"`
	CreatedOn       string       `json:"created_on"`
	UpdatedOn       string       `json:"updated_on"`
}

func ValidEngineType(e EngineType) bool {
	switch e {
	case EnginePetrol, EngineDiesel, EngineElectric, EngineHybrid:
		return true
	}
	return false
}

func ValidCarColor(c CarColor) bool {
	switch c {
	case ColorRed, ColorBlue, ColorWhite, ColorBlack:
		return true
	}
	return false
}

func ValidTransmission(t Transmission) bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}
