package main

// ===================================== ROOT COMMAND ===================================== //
const rootCmdShortDescription = "layermask is a command-line tool that inspects and combines 32-layer bitmasks."

const rootCmdLongDescription = `
  The general format of the commands is: layermask [command] [operand]... --[flag-name]=[flag-value].

  An operand is a layer index (0-31), a 0x-prefixed hex bit pattern, or a display name
  resolved through the table given with --names. Plain numbers are always layer indices,
  never bit patterns; only the 0x prefix reads an operand as raw bits.
`

// ===================================== EXPLAIN COMMAND ===================================== //
const explainCmdShortDescription = "Shows the bit pattern and member layers of each operand"

const explainCmdLongDescription = `
Each operand is resolved to a mask and printed with its canonical hex pattern, its layer
count, and its member layers in ascending index order. When a --names table is loaded,
every member layer is also shown with its display name; a member without a registered
name fails the command rather than printing a placeholder.
`

const explainCmdExample = `Explain a single layer index:

` + exampleSnippetStart + `
layermask explain 5
` + exampleSnippetEnd + `

Explain a raw bit pattern:

` + exampleSnippetStart + `
layermask explain 0x60
` + exampleSnippetEnd + `

Explain a named layer, with names loaded from a file:

` + exampleSnippetStart + `
layermask explain Water --names=layers.json
` + exampleSnippetEnd + `
`

// ===================================== CHECK COMMAND ===================================== //
const checkCmdShortDescription = "Runs one containment or identity query of a target mask against candidates"

const checkCmdLongDescription = `
The first operand is the target mask; the rest are the candidates. The --query flag picks
the predicate: HasAll, HasAny, HasNone and HasOnly ask whether the target contains the
candidates, IsExactly, IsAny, IsNot and IsNone ask whether the target equals them.
Containment and identity differ: a target holding layers 1 and 2 HasAll 1, but IsExactly 1
is false because the target is not exactly that single layer.

The process exit code carries the verdict, so scripts can branch without parsing output:
0 means the query held, 1 means it did not, 2 means the command itself failed.
`

const checkCmdExample = `Does the target contain both layers:

` + exampleSnippetStart + `
layermask check 0x0E --query=HasAll 1 2
` + exampleSnippetEnd + `

Is the target exactly the union of the candidates:

` + exampleSnippetStart + `
layermask check 0x06 --query=IsExactly 1 2
` + exampleSnippetEnd + `

Quiet verdict for scripting, exit code only:

` + exampleSnippetStart + `
layermask check 0x0E --query=HasAny 5 6 --output-type=none
` + exampleSnippetEnd + `
`

// ===================================== COMBINE COMMAND ===================================== //
const combineCmdShortDescription = "Folds the operands into one mask with a set-algebra operation"

const combineCmdLongDescription = `
Union, Intersect and Subtract fold the operands left to right, so the first operand is
the starting mask and every further operand is applied in turn. Complement unions all
operands first and inverts the result within the 32-layer universe.
`

const combineCmdExample = `Union of two layers:

` + exampleSnippetStart + `
layermask combine 1 2
` + exampleSnippetEnd + `

Clear layer 2 out of a pattern:

` + exampleSnippetStart + `
layermask combine 0x0E 2 --op=Subtract
` + exampleSnippetEnd + `

Everything except the named layers:

` + exampleSnippetStart + `
layermask combine Water Lava --op=Complement --names=layers.json
` + exampleSnippetEnd + `
`

// ===================================== DOC COMMAND ===================================== //
const docCmdShortDescription = "Generates markdown reference pages for all the commands"

const docCmdLongDescription = `
By default the pages use the standard cobra markdown layout. The table format instead
writes one page per command with its flags rendered as markdown tables, ready for a wiki.
`

const exampleSnippetStart = "```layermask"
const exampleSnippetEnd = "```"
