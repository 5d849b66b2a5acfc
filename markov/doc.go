/*
Package markov implements an order-k character level Markov model used to score how likely a text is
under the statistics of a training text.

Training counts every circular k-gram and (k+1)-gram of the text. Scoring sums, for every circular
position of the query, the Laplace smoothed log probability

	ln((count(k+1-gram) + 1) / (count(k-gram) + S))

where S is the number of distinct symbols in the training text. One rune is one symbol, no
normalization of the text takes place.

The counts live in a Counter, either backed by the open addressing assocmap.Map or by a native Go map.
Both produce identical counts and scores.
*/
package markov
