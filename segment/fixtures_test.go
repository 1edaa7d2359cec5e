package segment

const grammarResponse = `
ORIGINAL TEXT:
Une jam shume i geezuar qe po ju shkruaj.

GRAMMATICAL ERRORS:
1. Error: Une
   Correction: Unë
   Explanation: Missing diacritic on ë
2. Error: geezuar
   Correction: gëzuar

CORRECTED TEXT:
Unë jam shumë i gëzuar që po ju shkruaj.
`

const toneResponse = `
TONE:
Formal

FORMALITY LEVEL:
4/5

SENTIMENT:
Neutral with a slightly positive undertone

TONE ANALYSIS:
The text uses polite forms of address and institutional vocabulary.
`

const targetedRewriteResponse = `
ORIGINAL TONE:
Neutral

TARGET TONE:
friendly

REWRITTEN TEXT:
Hej! Projekti fillon më 10 Maj, mos harroni dokumentet.
`

const variationsRewriteResponse = `
ORIGINAL TONE:
Neutral

FORMAL TONE VERSION:
Ju njoftojmë se projekti do të fillojë më 10 Maj.

FRIENDLY TONE VERSION:
Hej, projekti nis më 10 Maj!

PERSUASIVE TONE VERSION:
Mos e humbisni fillimin e projektit më 10 Maj!
`
