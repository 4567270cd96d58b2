// Package domain contains the core business entities of the to-do list
// service: named lists and the free-text entries that belong to them. It is
// independent of any storage engine or delivery mechanism.
package domain
