// Package assets provides the stylesheet, scripts and page templates of the
// blog.
//
// # Loaders
//
// EmbeddedLoader and FilesystemLoader read the same layout, the first from
// the binary and the second from a theme directory. AssetResolver chains
// them: a theme may override only the stylesheet and keep the built-in
// pages, because lookup misses fall through to the embedded copy.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	├── js/
//	│   └── {name}.js
//	└── templates/
//	    └── {name}/
//	        ├── layout.html      # defines "layout"
//	        ├── index.html       # defines "content"
//	        ├── posts.html
//	        ├── post.html
//	        ├── about.html
//	        └── not_found.html
//
// # Security
//
// Names are restricted to letters, digits, '-' and '_'. FilesystemLoader
// also resolves symlinks and refuses files outside its directory.
package assets
