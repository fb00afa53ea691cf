// Package listing holds the in-memory data transformation behind the CV
// browser and the notification panel: the multi-criteria CV filter, sort
// orders, page windows, the merged notification feed and dashboard
// counters. Nothing in here performs I/O; callers load rows from the
// repository and hand them over.
package listing
