package syllabus

// mathsGroupOrder fixes the iteration order of the maths paper groups, since
// map iteration would otherwise be random.
var mathsGroupOrder = []string{"Maths IA", "Maths IB", "Maths IIA", "Maths IIB"}

// tables is the official TS/AP intermediate MPC chapter table, keyed by
// stream then year.
var tables = map[Stream]map[Year]YearSyllabus{
	StreamMPC: {
		YearFirst: {
			Mathematics: map[string][]string{
				"Maths IA": {
					"Functions",
					"Mathematical Induction",
					"Matrices",
					"Addition of Vectors",
					"Product of Vectors",
					"Trigonometric Ratios up to Transformations",
					"Trigonometric Equations",
					"Inverse Trigonometric Functions",
					"Hyperbolic Functions",
					"Properties of Triangles",
				},
				"Maths IB": {
					"Locus",
					"Transformation of Axes",
					"The Straight Line",
					"Pair of Straight Lines",
					"Three Dimensional Coordinates",
					"Direction Cosines and Direction Ratios",
					"The Plane",
					"Limits and Continuity",
					"Differentiation",
					"Applications of Derivatives",
				},
			},
			Physics: []string{
				"Physical World",
				"Units and Measurements",
				"Motion in a Straight Line",
				"Motion in a Plane",
				"Laws of Motion",
				"Work, Energy and Power",
				"System of Particles and Rotational Motion",
				"Oscillations",
				"Gravitation",
				"Mechanical Properties of Solids",
				"Mechanical Properties of Fluids",
				"Thermal Properties of Matter",
				"Thermodynamics",
				"Kinetic Theory",
			},
			Chemistry: []string{
				"Some Basic Concepts of Chemistry",
				"Structure of Atom",
				"Classification of Elements and Periodicity in Properties",
				"Chemical Bonding and Molecular Structure",
				"States of Matter: Gases and Liquids",
				"Stoichiometry",
				"Thermodynamics",
				"Chemical Equilibrium and Acids-Bases",
				"Hydrogen and its Compounds",
				"s-Block Elements (Alkali and Alkaline earth metals)",
				"p-Block Elements Group 13 (Boron Family)",
				"p-Block Elements Group 14 (Carbon Family)",
				"Organic Chemistry – Some Basic Principles and Techniques",
				"Hydrocarbons",
				"Environmental Chemistry",
			},
		},
		YearSecond: {
			Mathematics: map[string][]string{
				"Maths IIA": {
					"Complex Numbers",
					"De Moivre's Theorem",
					"Quadratic Expressions",
					"Theory of Equations",
					"Permutations and Combinations",
					"Binomial Theorem",
					"Partial Fractions",
					"Measures of Dispersion",
					"Probability",
					"Random Variables & Probability Distributions",
				},
				"Maths IIB": {
					"Circle",
					"System of Circles",
					"Parabola",
					"Ellipse",
					"Hyperbola",
					"Integration",
					"Definite Integrals",
					"Differential Equations",
				},
			},
			Physics: []string{
				"Waves",
				"Ray Optics and Optical Instruments",
				"Wave Optics",
				"Electric Charges and Fields",
				"Electrostatic Potential and Capacitance",
				"Current Electricity",
				"Moving Charges and Magnetism",
				"Magnetism and Matter",
				"Electromagnetic Induction",
				"Alternating Current",
				"Electromagnetic Waves",
				"Dual Nature of Radiation and Matter",
				"Atoms",
				"Nuclei",
				"Semiconductor Electronics",
				"Communication Systems",
			},
			Chemistry: []string{
				"Solid State",
				"Solutions",
				"Electrochemistry and Chemical Kinetics",
				"Surface Chemistry",
				"General Principles of Metallurgy",
				"p-Block Elements (Group 15, 16, 17, 18)",
				"d and f Block Elements & Coordination Compounds",
				"Polymers",
				"Biomolecules",
				"Chemistry in Everyday Life",
				"Haloalkanes and Haloarenes",
				"Alcohols, Phenols and Ethers",
				"Aldehydes, Ketones and Carboxylic Acids",
				"Organic Compounds Containing Nitrogen",
			},
		},
	},
}
