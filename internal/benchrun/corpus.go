// Package benchrun runs both solving pipelines over a fixed scramble
// corpus across a worker pool, the shape the CLI's benchmark subcommand
// and the web server's streaming endpoint both drive.
package benchrun

// Corpus is the fixed set of scrambles exercised by every benchmark run,
// carried over unchanged from the original implementation's own
// benchmark suite: four hand-made warm-ups, the superflip (the hardest
// known G0->G1 case, distance 7), three scrambler-sourced cases, and five
// long 35-45 move scrambles.
var Corpus = []string{
	"R U F",
	"R U F R U F",
	"R U F R U F R U F",
	"R U F R U F R U F2",
	"U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2",
	"B U F' L U R' L' F2 D' F2 L F' R' D L' D U2 R' U2 F' D' R2 F2 B' U2",
	"L U B2 F2 D' B' R U2 F B L' R2 U2 B' F2 R' U B' D' L U' F D F2 B",
	"B' L U2 R2 L' D L U F2 D' L2 D' L' R' B D' F2 B' U B' U L' U2 L F",
	"F' R' F2 U2 L B2 D B' L D L R F2 U' B2 D' U2 B' D U' L D2 B2 F' D2 L' R B' F R2 B F D' L D2 L2 D2 L2 D U'",
	"U B R' D U' L' B L R2 U' B2 F U B2 F2 D2 F2 D2 B2 F' R2 D2 F D U2 B F2 U F U F U L D' R' B2 R2 U2 L2 R2",
	"F2 U2 R' D2 L' R' F2 L' F D2 L B2 L U2 F' U F2 R' F2 L' B2 R2 D B' D' L F2 D U2 B' F' U2 F' U2 B2 F' D2 B2 R U'",
	"D L2 B R2 B L' D2 U R' B' F R D2 U F L2 D F' U' L' R B2 U2 B2 U' R D R' D2 F L' D U' L' D B F2 R' F D",
	"F2 L D R2 F' L2 B' F2 R D' L2 R' U' F R2 B D2 B' R2 U L R' D' U F' L U2 L R' D R2 B' F D2 F2 L D2 U L D",
}
