package models

// MinorCurrencyAmount is a monetary value in the smallest currency unit
// (e.g. cents). Every price, rate and amount in the system uses this type;
// conversion to display units happens at the edge, never in storage.
type MinorCurrencyAmount int64
