/*
Package semtok extracts semantic highlights from a parsed C-family
translation unit.

	  Unit + file + [begin, end]
	           |
	           v
	+--------------------+
	| tokens of the      |
	| line range         |
	+--------------------+
	           |
	 token kind, cursor kind,
	    cursor type kind
	           |
	           v
	+--------------------+
	| @syntax.Classify   |
	+--------------------+
	           |
	           v
	+--------------------+      +----------+
	| Highlights         | ---> |  Tracer  | (optional)
	| label -> positions |      +----------+
	+--------------------+

Every call walks the tokens again; nothing is cached between calls. Calls
against the same unit must not overlap.
*/
package semtok
