package models

// Money is a currency amount in euros. Values are kept at full precision;
// rounding to two decimals happens at presentation time only.
type Money float64
