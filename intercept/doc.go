// Package intercept presents the packets of a connection to an Observer,
// from a position within the connection's pipeline.Chain where packets are
// framed and uncompressed. Interception tolerates hosts which enable
// compression after it's installed, by repairing the Chain order once per
// connection.
package intercept
