// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The outline command lays out a declarative view tree and prints the frame
of every view.

Usage:

	outline [flags] <file>

Files ending in .yaml or .yml are read as YAML documents. Other files are
read in the outline syntax:

	vstack(dp: 1) {
		title = text(text: "Hello", size: 20)
		body = view(flex: true)
	}

Each view is printed on its own line as its name followed by x, y, width
and height.

The -width and -height flags set the size of the screen. When standard
output is a terminal, the default size is derived from the terminal size,
at 8 by 16 units per character cell. Otherwise the default is 375 by 812.

The -size flag sets the font size in sp of text without a size attribute.
The -scale flag sets the number of pixels per sp, scaling every text size.

The -ascii flag draws the views as boxes after the list. The -cols flag
sets the number of columns of the drawing.

The -svg and -pdf flags write drawings of the views to the named files.

The -v flag prints the screen size and timing to standard error.
`
