/*
Package events flattens Conta Azul financial event summaries into spreadsheet rows.

A summary is decoded into an Object that keeps the JSON key order, expanded by Flatten
into one Row per category ratio (with cost centre ratios spread across indexed columns)
and merged by Assemble into a Table whose columns are chosen by a Schema.
*/
package events
