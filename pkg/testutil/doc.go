// Package testutil provides test environments and fakes shared by packsmith's
// package tests.
package testutil
