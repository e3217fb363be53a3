// Package models contains the GORM data models used by the persistence
// layer, along with conversions to and from the domain entities.
package models
