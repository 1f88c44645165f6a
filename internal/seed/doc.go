// Package seed loads prior-election results as pseudo-polls.
//
// Some units see no polling for long stretches of the season. Without at
// least one eligible poll the backfill has nothing to estimate from and
// fails, so a configured table of prior verified results provides one
// pseudo-poll per unit, dated at the start of the season. Pseudo-polls
// stand in only for (unit, day) pairs with no real polling; the moment a
// real poll is eligible, the seed drops out of the estimate. The table
// is a configuration input; nothing here is hard-coded.
package seed
