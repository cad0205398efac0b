package domain

import "time"

// Default values
const (
	DefaultRoomsRequested   = 1
	DefaultMaxStayNights    = 90
	DefaultMaxDashboardDays = 62
)

// Pricing constants
const (
	WeekendSurchargeRate = 1.15 // applied to Friday and Saturday nights
)

// Business validation constants
const (
	MinRoomsRequested = 1
	MaxRoomsRequested = 100
	MaxStayNights     = 365
	DaysPerWeek       = 7
)

// WeekendNights дни недели, на которые действует наценка
var WeekendNights = []time.Weekday{
	time.Friday,
	time.Saturday,
}

// InventoryStatuses список статусов, занимающих номера
// Используется при построении индекса занятости
var InventoryStatuses = []BookingStatus{
	StatusConfirmed,
}
