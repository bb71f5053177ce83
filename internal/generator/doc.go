// Package generator creates the fixed Koa project skeleton.
//
// A [Generator] performs one forward pass over the filesystem: it creates the
// root directory and its seven subdirectories, then writes package.json,
// README.md, .npmrc, src/server.js and src/modules/app.js, in that order. The
// first failure stops the run; nothing already created is removed.
//
//	g := generator.New(afero.NewOsFs(), generator.WithStubPolicy(generator.PolicyEmpty))
//	res, err := g.Generate(ctx, "/path/to/new-project")
//	if errors.Is(err, generator.ErrAlreadyExists) {
//	    // target was there before we started
//	}
//
// Failures are *[PathError] values naming the failing path; their kind is
// checked with errors.Is against [ErrAlreadyExists], [ErrMissingParent],
// [ErrPermission], [ErrSerialize], [ErrInvalidPath] or [ErrIO].
//
// [Verify] checks an existing tree against the same layout and payloads.
package generator
