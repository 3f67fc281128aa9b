// This file is part of DiscoGB.
//
// DiscoGB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DiscoGB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DiscoGB.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles a number of functions useful for testing purposes,
// particularly in conjunction with the standard go test harness.
//
// The Expect*() functions report a test failure but allow the test to
// continue. The Demand*() functions end the test immediately. Demand is useful
// when the value being tested is used in later tests and so must be correct.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// It is worth describing how the success and failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure() to fail and ExpectSuccess() to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// Every function accepts an optional list of tags. The tags are printed as
// part of the failure message and are useful to identify which iteration of a
// loop caused the failure.
//
// The CompareWriter and TailWriter types implement the io.Writer interface and
// should be used to capture output.
package test
