// Package models contains the domain objects of the sensor station stored with the pydis
// records and sequences: the users, the sample holders with their climate and sentinel samples
// and the event requests.
package models
