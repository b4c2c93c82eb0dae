// Package redact strips secrets from a code selection before it leaves the
// machine.
//
// Detection is regex heuristics for common secret shapes (Google, AWS,
// GitHub, Slack, OpenAI and Anthropic keys, JWTs, bearer tokens, private key
// headers, JDBC URLs with inline passwords). A selection taken from a file
// whose path matches a configured glob is replaced wholesale.
package redact
