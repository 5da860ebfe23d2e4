// Package request decodes the single JSON object the CLI (cmd/lnetctl)
// accepts on argv[1] or stdin and orchestrates the check/create/recommend
// actions across net, validate, compress, reach, serial, and recommend.
// It plays the role the original implementation's DataReader and Module
// classes played together: field-presence parsing plus an accumulated
// diagnostic buffer that survives a partial failure.
package request
