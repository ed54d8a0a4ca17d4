package compile

import (
	"strings"
)

// command accumulates the tokens of a single shell statement.
type command struct {
	tokens []string
}

func newCommand(bin string, args ...string) *command {
	return &command{tokens: append([]string{bin}, args...)}
}

// add appends tokens.
func (c *command) add(tokens ...string) *command {
	c.tokens = append(c.tokens, tokens...)
	return c
}

// flag appends `name value`, if value is set.
func (c *command) flag(name, value string) *command {
	if value == "" {
		return c
	}
	return c.add(name, value)
}

func (c *command) String() string {
	return strings.Join(c.tokens, " ")
}

// script is an ordered list of shell statements, each terminated with ";".
type script struct {
	statements []string
}

func (s *script) add(statement string) *script {
	s.statements = append(s.statements, statement)
	return s
}

func (s *script) String() string {
	if len(s.statements) == 0 {
		return ""
	}
	return strings.Join(s.statements, ";") + ";"
}

// shellEscaper escapes the characters a shell still interprets inside double quotes.
var shellEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)

// quote wraps a value in double quotes with special characters escaped. Occurrences
// of variable (eg. "$currentFrame") are left as is so the shell still expands them.
func quote(s, variable string) string {
	parts := strings.Split(s, variable)
	for i, p := range parts {
		parts[i] = shellEscaper.Replace(p)
	}
	return `"` + strings.Join(parts, variable) + `"`
}
