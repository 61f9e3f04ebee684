package domain

// Gas economy constants. The daily rate derives from a 10.00 / 30-day plan.
const (
	DailyGasRate Money = 33 // 0.33 per day, in cents
	LowFuelDays        = 5
)

// GasStatus is the derived fuel gauge for a wallet's gas tank.
type GasStatus struct {
	GasTank  Money `json:"gas_tank"`
	DaysLeft int64 `json:"days_left"`
	IsLow    bool  `json:"is_low"`
	IsEmpty  bool  `json:"is_empty"`
}

// GasStatusFor computes the fuel gauge for a gas tank balance.
func GasStatusFor(gasTank Money) GasStatus {
	daysLeft := gasTank / DailyGasRate
	if daysLeft < 0 {
		daysLeft = 0
	}
	return GasStatus{
		GasTank:  gasTank,
		DaysLeft: daysLeft,
		IsLow:    gasTank > 0 && daysLeft < LowFuelDays,
		IsEmpty:  gasTank <= 0,
	}
}
