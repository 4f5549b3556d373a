// Package prediction fits an ordinary least squares line on the hourly energy
// usage training set and evaluates it for a requested hour of day.
package prediction
