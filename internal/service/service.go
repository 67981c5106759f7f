// Package service contains the catalog business operations.
//
// It sits between the handler and repository layers: handlers pass
// decoded candidate records in, services run them through the
// resource's registry and record what happened in logs and metrics.
package service
