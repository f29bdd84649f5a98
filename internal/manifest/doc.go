// Package manifest describes a dependency graph declaratively.
//
// A manifest is a YAML document listing units with their dependencies plus
// the units to install and uninstall once the graph is built:
//
//	units:
//	  - name: Http
//	    dependsOn: [TCP]
//	  - name: Chrome
//	    dependsOn: [Http, GLib]
//	install: [Chrome]
//	uninstall: []
//
// Apply rebuilds a graph from a manifest and reports what happened to every
// operation. Watcher re-applies a manifest file whenever it changes on disk.
package manifest
