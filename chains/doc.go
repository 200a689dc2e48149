// Package chains builds transition and generator matrices of finite Markov
// chains for tests, benchmarks, examples and the command-line tool.
//
// Constructors:
//
//   - KMRSequential(n, p, ε)       Kandori–Mailath–Rob evolutionary chain,
//     nearly reducible for small ε
//   - BirthDeath(up, down)         tridiagonal stochastic matrix
//   - BirthDeathGenerator(b, d)    tridiagonal generator
//   - RandomStochastic(n, opts...) seeded random stochastic matrix
//
// Transformations:
//
//   - Uniformize(q)                generator → stochastic, same stationary law
//   - BlockDiagonal(blocks...)     disjoint union (reducible chain)
//   - Permute(m, perm)             relabel states
//
// Structure:
//
//   - Classes(m)                   communicating classes, closed or transient
//   - ClosedClasses(m)             closed classes only
//
// DetailedBalance gives the closed-form stationary distribution of
// birth–death chains, handy as an independent reference.
//
// All constructors return *matrix.Dense, validate their parameters and
// report problems through the sentinels in errors.go. Random constructors are
// deterministic for a fixed seed.
package chains
