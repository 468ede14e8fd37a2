// Package description derives display rows for entities.
//
// A Builder maps one raw effect (or a skill's costs) to a styled Row. A Cache memoizes the
// ordered row list per entity id for the life of the process; entity effect sets are treated
// as static, so entries are only dropped through an explicit Invalidate. Filter and Show select
// the rows whose Detail intersects a requested bitset at display time, keeping cache order.
package description
