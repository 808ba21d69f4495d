// Package plot renders the (xs, ys) point cloud produced by orbit.Trace or
// localiser.Run as a scatter plot, replacing the original tool's
// plotly-based visualization/plotter.py with gonum.org/v1/plot, a static
// raster renderer better suited to a CLI binary than an interactive
// WebGL canvas.
package plot
