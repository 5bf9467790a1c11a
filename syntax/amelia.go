package syntax

// AmeliaKeywordList is the reserved words of the Amelia deployment language.
const AmeliaKeywordList = "as|case|catch|cd|cmd|compile|config|default|depends|deployment|do|else|eval|extends|extension|false|finally|for|if|import|includes|instanceof|new|null|on|package|param|return|run|scp|static|subsystem|super|switch|synchronized|throw|to|true|try|typeof|val|var|while"

const (
	AmeliaID          = "xtext.amelia"
	AmeliaContentType = "xtext/amelia"
	AmeliaKeywordName = "keyword.amelia"
)

// AmeliaExtensions are the file extensions of Amelia sources.
var AmeliaExtensions = []string{".amelia"}

var amelia = Table{
	ID:           AmeliaID,
	ContentTypes: []string{AmeliaContentType},
	Patterns: []Pattern{
		Include("orion.c-like#comment_singleLine"),
		Include("orion.c-like#comment_block"),
		Include("orion.lib#string_doubleQuote"),
		Include("orion.lib#string_singleQuote"),
		Include("orion.lib#number_decimal"),
		Include("orion.lib#number_hex"),
		Include("orion.lib#brace_open"),
		Include("orion.lib#brace_close"),
		Include("orion.lib#bracket_open"),
		Include("orion.lib#bracket_close"),
		Include("orion.lib#parenthesis_open"),
		Include("orion.lib#parenthesis_close"),
		Inline(AmeliaKeywordName, MustKeywordExpression(ParseKeywordList(AmeliaKeywordList)...)),
	},
}

// Amelia returns the pattern table of the Amelia language. The table is
// built once when the package is loaded; each call returns a fresh copy.
func Amelia() Table {
	return amelia.Clone()
}

// AmeliaKeywords returns the reserved words in declaration order.
func AmeliaKeywords() []string {
	return ParseKeywordList(AmeliaKeywordList)
}
