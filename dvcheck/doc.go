// Package dvcheck measures which algebraic laws hold in the dv algebras:
// commutativity, associativity and norm multiplicativity.
//
// 🚀 What is dvcheck?
//
//	Pure, read-only diagnostics over the public dv contract — the package
//	never touches element internals and never drives control flow in the
//	engine. The classic instruments:
//	  • Commutator(a,b)     = a·b − b·a       (zero ⇔ the pair commutes)
//	  • Associator(a,b,c)   = (a·b)·c − a·(b·c) (zero ⇔ the triple associates)
//	  • NormMultiplicative  — ‖a·b‖ ≈ ‖a‖·‖b‖, which must hold at EVERY
//	    level; a violation is an engine bug, not an algebraic property
//	  • ScanAssociators     — exhaustive basis-triple census of
//	    non-associativity at a level
//
// ✨ The expected picture:
//
//	level 1 — commutative, associative
//	level 2 — NON-commutative, associative
//	level 3 — NON-commutative, NON-associative (168 of 343 ordered
//	          imaginary basis triples, max associator norm 2)
//
// ⚙️ Usage:
//
//	import "github.com/dvlabs/dvmath/dvcheck"
//
//	rep, err := dvcheck.ScanAssociators(dv.LevelOctonion)
//	// rep.NonAssociative == 168, rep.MaxNorm == 2
//
// All predicates take functional options for the zero threshold
// (WithEpsilon) and the norm-multiplicativity relative tolerance
// (WithRelTol); defaults are documented constants.
//
// Errors are propagated from dv unchanged (ErrLevelMismatch for mixed
// operands, ErrBadLevel for an unsupported scan level); dvcheck introduces
// no sentinels of its own.
package dvcheck
