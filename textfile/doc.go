/*
Package textfile provides line sources for sorting text files.

A Source checks up front that it refers to a regular file and then yields the
file's lines lazily, re-reading the file on every iteration. Sources may also
wrap an arbitrary reader (e.g., stdin); these can be iterated only once.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer
All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile
