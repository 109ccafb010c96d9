// Package export renders solved results as CSV tables for spreadsheet
// consumption.
//
// Segments and Nodes write one table each to an io.Writer, using the
// row order already present in the Result and the Result's pressure
// unit for column headers. The package performs no recomputation; it
// only formats figures the solver already produced.
package export
