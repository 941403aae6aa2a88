// 22 Mar 2026

/*
Scoremsa scores the columns of a codon level multiple sequence
alignment of orthologs.

For each codon column it combines four signals: amino acid identity,
average pairwise BLOSUM62 similarity, codon usage frequency bias
relative to each source organism's codon distribution, and intrinsic
disorder propensity from an external predictor. The result is a csv
table with one row per codon column and a fixed thirteen column
header. Columns with no usable codons get a row of "X" placeholders
rather than being dropped, so row number always equals codon number.

Usage:
	scoremsa [flags] alignment.fasta usage_dir out_dir

The alignment is fasta with every comment carrying "uid=..;" and
"tax_id=.." tokens. All sequences must have the same length, a
multiple of three. usage_dir holds one directory per taxonomy ID, each
with exactly one "*_dist.csv" file of "codon,frequency" lines; zero or
several such files abort the run. The report is written to out_dir,
named after the uid of the first sequence.

The flags are:
	-p command
		The disorder predictor to run, once per sequence. It gets the
		gapless amino acid sequence on standard input and must write
		one line per residue: position, residue, strength and
		optionally a one letter classification ("D" for disordered).
	-d cutoff
		If the predictor writes no classification letters, residues
		with strength at or above the cutoff count as disordered.
	-w workers
		Number of goroutines scoring columns. 0 means one per CPU.
		The output is identical whatever the worker count.
	--config file
		Settings file. Without the flag, scoremsa.yaml in the working
		directory is used if present. Flags win over file settings.
*/
package main
