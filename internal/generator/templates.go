package generator

import (
	"github.com/thoreinstein/koagen/internal/errors"
)

// ServerJS is written to src/server.js.
const ServerJS = `const app = require('./modules/app');

app.listen(3000);
`

// AppJS is written to src/modules/app.js.
const AppJS = `const Koa = require('koa');
const app = new Koa();

app.use(async ctx => {
  ctx.body = 'Hello World';
});

module.exports = app;
`

const filledReadme = `# Project

Generated by koagen.

## Getting started

    npm install
    npm start

The server listens on http://localhost:3000.
`

const filledNpmrc = "package-lock=true\n"

// Policy decides the content of the README.md and .npmrc stubs.
type Policy string

const (
	// PolicyEmpty leaves both stubs zero-length.
	PolicyEmpty Policy = "empty"
	// PolicyFilled gives both stubs fixed starter content.
	PolicyFilled Policy = "filled"
)

// ParsePolicy converts s to a Policy. The empty string means PolicyEmpty.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyEmpty:
		return PolicyEmpty, nil
	case PolicyFilled:
		return PolicyFilled, nil
	}
	return "", errors.Newf("unknown stub policy %q (valid: %s, %s)", s, PolicyEmpty, PolicyFilled)
}

// Readme returns the README.md content under p.
func (p Policy) Readme() []byte {
	if p == PolicyFilled {
		return []byte(filledReadme)
	}
	return []byte{}
}

// Npmrc returns the .npmrc content under p.
func (p Policy) Npmrc() []byte {
	if p == PolicyFilled {
		return []byte(filledNpmrc)
	}
	return []byte{}
}
