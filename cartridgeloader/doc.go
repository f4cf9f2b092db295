// This file is part of Mikey.
//
// Mikey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mikey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mikey.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader is used to load the content that is identified by
// the nointro package.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/Klax.lnx",
//	}
//
// It is preferred however that the NewLoader() function is used.
package cartridgeloader
