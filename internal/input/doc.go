// Package input reads truss definitions entered as tables of free-form
// cells.
//
// Every numeric cell is parsed leniently: empty or unparsable text reads as
// 0 and never fails a load. Member endpoints are parsed the same way and
// truncated to integer node ids. Node ids are the row order, starting at 0.
//
// Documents can be JSON or YAML:
//
//	name: Simple span
//	nodes:
//	  - {x: 0, y: 0, support: pin}
//	  - {x: 3, y: 0, support: rollery, fx: -6}
//	  - {x: 1.5, y: 2, cases: {dead: {fy: -10}, live: {fy: -4}}}
//	members:
//	  - {start: 0, end: 1}
//	  - {start: 1, end: 2}
//	  - {start: 0, end: 2}
package input
