// Package domain contains the core business entities and errors of the
// application, independent of any specific infrastructure or delivery
// mechanism.
package domain
