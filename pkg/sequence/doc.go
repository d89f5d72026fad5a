/*
Package sequence provides lazy, re-iterable sequences with a fluent
operator surface.

A [Chain] wraps an iteration source and builds pipelines out of
transformations (filtering, slicing, concatenation, deduplication,
flattening) without evaluating anything at construction time. Evaluation is
pull-based: elements flow only when a cursor or terminal operation asks for
them, and a chain can be traversed any number of times because every
traversal gets its own cursor.

Unlike a one-pass stream, a Chain can wrap a single-use source and still be
multi-pass through [FromOneShot], which records the source's output during
the first traversal, or memoize an expensive pipeline with [Chain.Cached].
[BreadthFirst] and [DepthFirst] explore implicit graphs defined by a
child-expansion function, with cycle protection.

Same-type operators are methods on Chain; operators that change the element
type or require comparable elements are package-level functions, e.g. [Map],
[Distinct], [Equal].

A nil *Chain means "no sequence", which is distinct from an empty sequence:
operators propagate nil, terminals treat it as empty or false. Nil
predicates and transformers passed to same-type operators act as identity.
*/
package sequence
