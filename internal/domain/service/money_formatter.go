package service

// MoneyFormatter renders whole currency amounts for display.
type MoneyFormatter interface {
	Format(amount int64) string
}
