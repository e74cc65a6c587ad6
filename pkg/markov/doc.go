/*
Package markov provides a generic, in-memory, first-order Markov chain for
any comparable token type.

A Chain is trained with Feed on sequences of tokens and sampled with Generate
or GenerateFromToken, which perform a weighted random walk from a start token
until an end token is drawn. Each distinct token is interned once, so the
transition tables only ever hold small integer handles. Randomness comes from a
per-chain math/rand/v2 generator that can be seeded for reproducible output.

TextChain specializes the chain for words, splitting lines of text into tokens
and joining generated tokens back into sentences.

A Chain is not safe for concurrent use. Callers sharing one must guard both
Feed and generation with a single mutex.
*/
package markov
