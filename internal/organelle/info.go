package organelle

// Facts holds the reference card content for one organelle.
type Facts struct {
	Name      string
	Structure string
	Function  string
	Diseases  string
	FunFact   string
}

var factsByKind = map[Kind]Facts{
	Mitochondria: {
		Name:      "Mitochondria",
		Structure: "Double membrane-bound organelle with inner folds called cristae.",
		Function:  "Produces energy (ATP) through cellular respiration. Known as the powerhouse of the cell.",
		Diseases:  "Mitochondrial diseases can affect energy production (e.g., Leigh syndrome).",
		FunFact:   "Mitochondria have their own DNA, separate from the nucleus!",
	},
	Nucleus: {
		Name:      "Nucleus",
		Structure: "Double membrane-bound organelle containing chromatin and nucleolus. Has nuclear pores.",
		Function:  "Stores genetic material (DNA) and coordinates cell activities like growth and reproduction.",
		Diseases:  "Progeria, genetic disorders linked to chromosomal mutations.",
		FunFact:   "The nucleus is often the largest organelle in animal cells.",
	},
	Chloroplast: {
		Name:      "Chloroplast",
		Structure: "Contains chlorophyll and thylakoids stacked into grana.",
		Function:  "Conducts photosynthesis to produce food (glucose) for the plant using sunlight.",
		Diseases:  "Chlorosis (yellowing of leaves due to lack of chlorophyll).",
		FunFact:   "Chloroplasts are thought to have originated from cyanobacteria.",
	},
	Ribosome: {
		Name:      "Ribosomes",
		Structure: "Small particles consisting of RNA and associated proteins, found in cytoplasm or on rough ER.",
		Function:  "The site of protein synthesis (translation).",
		Diseases:  "Ribosomopathies (e.g., Diamond-Blackfan anemia).",
		FunFact:   "Ribosomes are found in both prokaryotic and eukaryotic cells.",
	},
	ER: {
		Name:      "Endoplasmic Reticulum (ER)",
		Structure: "Network of membranous tubules and sacs. Rough ER has ribosomes; Smooth ER does not.",
		Function:  "Rough ER: Protein synthesis and folding. Smooth ER: Lipid synthesis and detoxification.",
		Diseases:  "ER stress is linked to neurodegenerative diseases like Alzheimer's.",
		FunFact:   "The ER membrane is continuous with the nuclear envelope.",
	},
	Golgi: {
		Name:      "Golgi Apparatus",
		Structure: "Stack of flattened membrane-bound sacs called cisternae.",
		Function:  "Modifies, sorts, and packages proteins and lipids for secretion or delivery to other organelles.",
		Diseases:  "Achondrogenesis (skeletal disorder).",
		FunFact:   "Named after Camillo Golgi, who discovered it in 1898.",
	},
	Lysosome: {
		Name:      "Lysosome",
		Structure: "Spherical vesicle containing hydrolytic enzymes.",
		Function:  "Digests waste materials, cellular debris, and foreign invaders.",
		Diseases:  "Lysosomal storage diseases (e.g., Tay-Sachs disease).",
		FunFact:   "Lysosomes act as the waste disposal system of the cell.",
	},
	Membrane: {
		Name:      "Cell Membrane",
		Structure: "Phospholipid bilayer with embedded proteins and cholesterol.",
		Function:  "Controls movement of substances in and out of the cell; provides protection.",
		Diseases:  "Cystic fibrosis (defect in transport protein).",
		FunFact:   "The fluid mosaic model describes its flexible nature.",
	},
	Wall: {
		Name:      "Cell Wall",
		Structure: "Rigid outer layer made of cellulose (in plants), chitin (in fungi), or peptidoglycan (in bacteria).",
		Function:  "Provides structural support, protection, and prevents over-expansion.",
		Diseases:  "N/A (Primarily structural in plants/bacteria).",
		FunFact:   "Animal cells do not have cell walls, which allows them to be more flexible.",
	},
}

// Info returns the reference facts for a kind.
func Info(kind Kind) Facts {
	if f, ok := factsByKind[kind]; ok {
		return f
	}
	return factsByKind[Nucleus]
}
