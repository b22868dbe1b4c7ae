// Package domain models OBS active-source shot data and its VELEST CNV rendering.
//
// # Data Sources
//
// Station table: one instrument per line, whitespace-delimited, no header:
//
//	<code> <lat dd> <lon dd> <depth m>
//	e.g. "OBS01 -41.2345 174.5678 2150"
//
// Latitude is positive north, longitude positive east. Depth is metres below sea
// level and is written to CNV in kilometres.
//
// Shot files: one file per receiving station, named "<code>.time". The station
// code is everything before the first dot. Each line describes one shot picked
// on that station:
//
//	col 0  shot name
//	col 1  shot id
//	col 2  shot longitude
//	col 3  shot latitude
//	col 4  offset (km)
//	col 5  unused
//	col 6  travel time (ms)
//	col 7  water depth at shot (km)
//
// Only columns 0 and 6 reach the output, but the earlier columns must be present
// for column indexing to line up.
//
// # Reciprocal Geometry
//
// VELEST expects earthquakes recorded at stations. Active-source data is the other
// way round, so each OBS is written as a pseudo-event located at the instrument and
// each shot is written as a phase reading at a "station" named after the shot. The
// origin time, magnitude, gap and RMS of the pseudo-event are fixed dummies.
//
// # CNV Layout
//
// Origin line:
//
//	<code>121212 1212 12.12 <lat %7.4f><N|S> <lon %8.4f><E|W> <depth km %6.2f> <mag %6.2f> <gap %6g> <rms %9.2f>
//
// Hemisphere letters use a strict greater-than test, so a coordinate of exactly
// zero is written as S or W.
//
// Phase readings are 12 characters each, six to a line:
//
//	<shot %-4s><phase+weight %-2s><seconds %6.2f>
//
// The last line of a station may hold fewer than six readings. A blank line
// separates stations.
package domain
