// Package proxy is a TCP relay between game clients and a game server,
// which hosts an intercept.Interception within each client connection's
// pipeline.Chain.
package proxy
