// SPDX-License-Identifier: MIT

// Package opstr models fermionic operator terms and normalizes them before
// they reach a matrix-element engine.
//
// 🚀 What is an operator term?
//
//	A term is a product of site-local operators times a complex coefficient:
//
//	    J · O₀(i₀) O₁(i₁) … O_{k-1}(i_{k-1})
//
//	written as an operator string ("+-", "nn", "+n-") plus one site index per
//	character. The vocabulary is fixed:
//
//	    I  identity
//	    +  creation c†
//	    -  annihilation c
//	    n  number c†c
//	    z  shifted number c†c − ½
//
// ✨ What this package does:
//   - Canonicalize: stable sort by site, multiplying the coefficient by −1
//     for every transposition of two fermionic (+/−) operators.
//   - HermitianConjugate: swap + ↔ −, reverse the product, conjugate the
//     coefficient, then canonicalize.
//   - IsPossiblyNonzero: Pauli exclusion (c†c† = cc = 0 on one site).
//
// The species separator '|' is understood by IsPossiblyNonzero (each segment
// is an independent species) but rejected by Canonicalize and
// HermitianConjugate; spinful terms are split first, see package spinful.
//
// All functions are pure: inputs are never mutated, every call returns a
// fresh Term. They are safe to call concurrently.
package opstr
