package policy

// DefaultConfig returns the standing policy for public semiconductor-flow
// repositories: proprietary process data, vendor IP and foundry names may
// never leave for a public remote.
func DefaultConfig() *Config {
	return &Config{
		BlockedPaths:     DefaultBlockedPaths(),
		AllowedPaths:     DefaultAllowedPaths(),
		ContentPatterns:  DefaultContentPatterns(),
		SkipContentPaths: DefaultSkipContentPaths(),
		Limits: Limits{
			MaxAdded:   10,
			MaxChanged: 50,
		},
		SecureRemotes: []string{
			"/home/zf4_projects/OpenROAD-guest/platforms/gf12.git",
			"/home/zf4_projects/OpenROAD-guest/platforms/tsmc65lp.git",
		},
		ExceptionContact: "Tom",
	}
}

// DefaultBlockedPaths returns path patterns that block a commit unless an
// allowed pattern overrides them. Matching is unanchored, so a bare extension
// matches anywhere in the path; over-blocking is the intended bias.
func DefaultBlockedPaths() []string {
	return []string{
		`flow/`,
		`\.gds`,
		`\.lef`,
		`\.cdl`,
		`\.cal`,
		`\.v`,
		`\.db`,
		`\.lib`,
		`\.t?gz`,
		`\.tar`,
		`tsmc`,
		`gf\d+`,
		`\d+lp`,    // Invecas
		`sc\d+`,    // ARM-style names
		`cln\d+`,   // eg CLN65 (for ARM)
		`scc9gena`, // Sky90 library
		`sky90`,    // Sky90
	}
}

// DefaultAllowedPaths returns exemptions to the blocked path patterns. They
// anchor to the path start so a nested directory cannot spoof an exemption.
func DefaultAllowedPaths() []string {
	return []string{
		`^flow/designs`,
		`^flow/docs`,
		`^flow/platforms/nangate45`,
		`^flow/platforms/sky130`,
		`^flow/platforms/asap7`,
		`^flow/scripts`,
		`^flow/test`,
		`^flow/util`,
		`^flow/README.md`,
		`^flow/Makefile`,
		`^(tools/OpenROAD/)?src/FastRoute/test`,
		`^(tools/OpenROAD/)?src/ICeWall/test`,
		`^((tools/OpenROAD/)?src/OpenDB/)?src/lef(56)?/TEST`,
		`^((tools/OpenROAD/)?src/OpenDB/)?test`,
		`^(tools/OpenROAD/)?src/OpenPhySyn/test`,
		`^(tools/OpenROAD/)?src/OpenSTA/examples`,
		`^(tools/OpenROAD/)?src/OpenSTA/test`,
		`^(tools/OpenROAD/)?src/PDNSim/test`,
		`^(tools/OpenROAD/)?src/TritonCTS/test`,
		`^(tools/OpenROAD/)?src/TritonMacroPlace/test`,
		`^(tools/OpenROAD/)?src/antennachecker/test`,
		`^(tools/OpenROAD/)?src/dbSta/test`,
		`^(tools/OpenROAD/)?src/init_fp/test`,
		`^(tools/OpenROAD/)?src/ioPlacer/test`,
		`^(tools/OpenROAD/)?src/opendp/test`,
		`^(tools/OpenROAD/)?src/pdngen/test`,
		`^(tools/OpenROAD/)?src/replace/test`,
		`^(tools/OpenROAD/)?src/resizer/test`,
		`^(tools/OpenROAD/)?src/tapcell/test`,
		`^(tools/OpenROAD/)?src/OpenRCX/test`,
		`^(tools/OpenROAD/)?test`,
		`^tools/yosys`,
	}
}

// DefaultContentPatterns returns the prohibited content tokens. Files may not
// contain these anywhere, even files whose paths are allowed.
func DefaultContentPatterns() []string {
	return []string{
		`gf\d\d+`, // eg gf12, gf14
		`tsmc`,    // eg tsmc65lp
		`\d+lp`,   // eg 12LP (for Invecas)
		`\barm\b`, // eg ARM
		`cln\d+`,  // eg CLN65 (for ARM)
		`cypress`, // eg Cypress Semiconductor
	}
}

// DefaultSkipContentPaths returns paths exempt from content scanning, mostly
// binary formats and generated files known to be clean.
func DefaultSkipContentPaths() []string {
	return []string{
		`\.gif$`,
		`\.jpg$`,
		`\.png$`,
		`\.pdf$`,
		`\.odt$`,
		`\.xlsx$`,
		`\.dat$`, // eg POWV9.dat
		`\.gds(\.orig)?$`,
		`^README.md$`,
		`^flow/README.md$`,
		`^(tools/TritonRoute)?/README.md$`,
		`^(tools/OpenROAD/)?src/replace/README.md$`,
		`^tools/yosys/`,
		`^\.git/`,
		`^flow/designs/.*/config.mk$`,
		`^flow/designs/.*/wrappers.tcl$`,
		`^flow/designs/.*/macros.v$`,
		`^flow/designs/src/.*\.sv2v\.v$`,
		`^flow/scripts/add_routing_blk.tcl$`,
		`^flow/scripts/floorplan.tcl$`,
		`^flow/test/core_tests.sh$`,
		`^flow/test/smoke.sh$`,
		`^flow/util/cell-veneer/wrap_stdcells.tcl`,
		`^flow/util/cell-veneer/lefdef.tcl`,
		`^flow/Makefile$`,
	}
}
