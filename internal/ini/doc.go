// Package ini parses the line-oriented configuration dialect used by
// capture-session snapshot files.
//
// The dialect is INI-like but deliberately looser than common INI libraries
// allow: duplicate keys within a section are meaningful, declaration order is
// preserved, and a section that appears twice is reopened rather than
// replaced. A Document therefore stores each section as an ordered list of
// key/value entries instead of a map.
//
// Comment handling is purely lexical. Everything from the first carriage
// return, ';' or '#' on a physical line is discarded, including inside
// quoted values. Downstream consumers of the dialect depend on that
// truncation, so it is preserved here rather than fixed.
package ini
